package capability

// Template is the capability document before device data is filled in.
// The Service block is served as is.
const Template = `<?xml version="1.0"?>
<!DOCTYPE Capability SYSTEM "obex-capability.dtd">
<Capability Version="1.0">
 <General>
  <Manufacturer></Manufacturer>
  <Model></Model>
  <SN></SN>
  <SW version=""/>
  <OS version="" id=""/>
 </General>
 <Service>
  <UUID>SYNCML-SYNC</UUID>
  <Name>SyncML</Name>
  <Version>1.2</Version>
  <Object>
   <Type>application/vnd.syncml+wbxml</Type>
   <Ext>
    <XVal>application/vnd.syncml.ds.notification</XVal>
    <XNam>ServerAlertedNotificationType</XNam>
   </Ext>
  </Object>
 </Service>
</Capability>`
